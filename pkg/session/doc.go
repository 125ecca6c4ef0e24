// Package session plays a remote ventriglisse game: it reads mazes from the
// game server, solves them and answers with move strings until the server
// stops sending mazes.
//
// # Protocol
//
// The server speaks a line-oriented text protocol:
//
//  1. It greets with a banner ending in "ready..."; the client answers with
//     an empty line.
//  2. Each maze arrives as a base64-encoded PNG between a line containing
//     "BEGIN MAZE" and the text "END MAZE". The client answers with the
//     move string on one line.
//  3. When the player has solved every maze the server writes a closing
//     message (usually the flag) and closes the connection.
//
// [Conn] implements the framing, [Session] the game loop and [Dial] the
// connection with retries.
//
// # Failures
//
// A maze that cannot be solved ends the session: the server would reject any
// answer anyway. Before returning, the session hands the image and the grid
// it was read into to a diagnostics store.
package session
