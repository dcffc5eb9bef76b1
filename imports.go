package streamchat

import (
	"context"
	"net/url"
)

// Import modes. Insert fails on conflicting ids, upsert overwrites.
const (
	ImportModeInsert = "insert"
	ImportModeUpsert = "upsert"
)

// CreateImportURL requests a signed upload URL for an import file.
func (c *Client) CreateImportURL(ctx context.Context, fileName string) (*Response, error) {
	if err := validateRequired("file name", fileName); err != nil {
		return nil, err
	}
	return c.post(ctx, "import_urls", nil, map[string]any{"filename": fileName})
}

// CreateImport starts an import from a previously uploaded file. mode
// is ImportModeInsert or ImportModeUpsert.
func (c *Client) CreateImport(ctx context.Context, path, mode string) (*Response, error) {
	if err := validateRequired("path", path); err != nil {
		return nil, err
	}
	if mode != ImportModeInsert && mode != ImportModeUpsert {
		return nil, &ValidationError{Errors: []string{`mode must be "insert" or "upsert"`}}
	}
	return c.post(ctx, "imports", nil, map[string]any{"path": path, "mode": mode})
}

// GetImport fetches the state of an import.
func (c *Client) GetImport(ctx context.Context, importID string) (*Response, error) {
	if err := validateRequired("import id", importID); err != nil {
		return nil, err
	}
	return c.get(ctx, "imports/"+url.PathEscape(importID), nil)
}

// ListImports paginates the app's imports.
func (c *Client) ListImports(ctx context.Context, options map[string]any) (*Response, error) {
	return c.get(ctx, "imports", queryParams(options))
}
