// Package streamchat provides a server-side Go client for the Stream
// Chat API.
//
// The client signs every request with a JWT derived from the API
// secret and exposes one method per remote endpoint: users, channels,
// messages, moderation, devices, segments, campaigns, search and app
// configuration. It performs no retries and keeps no local state
// beyond the HTTP connection pool.
//
// Basic usage:
//
//	client, err := streamchat.New("api-key", "api-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Add a user
//	_, err = client.UpsertUser(ctx, map[string]any{"id": "chuck", "name": "Chuck"})
//
//	// Create a channel and send a message
//	channel := client.Channel("team", "kung-fu", nil)
//	_, err = channel.Create(ctx, "chuck")
//	resp, err := channel.SendMessage(ctx, map[string]any{"text": "AMA about kung-fu"}, "chuck")
//
//	// Issue a client-side token for a user
//	token, err := client.CreateToken("chuck")
package streamchat
