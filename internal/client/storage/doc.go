// Package storage is the client's persistence adapter.
//
// It turns the raw kv table into typed, best-effort reads and writes:
//
//	sess := storage.Get[*models.Session](ctx, store, "auth_user", nil)
//	storage.Set(ctx, store, "posts", posts)
//	store.Remove(ctx, "auth_user", "auth_token")
//
// Reads never fail: a missing key, a database error or a value that does not
// decode into the requested type all yield the caller's fallback. Writes and
// removals log their errors and return nothing; the store gives no durability
// guarantee beyond what SQLite provides.
//
// Open creates the database file and applies the embedded goose migrations.
package storage
