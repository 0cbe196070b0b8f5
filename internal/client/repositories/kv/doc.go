// Package kv is the raw key/value layer under the client's persistence
// adapter.
//
// Values are opaque bytes; encoding and fallback rules live one level up in
// internal/client/storage. SQLiteRepository works over dbx.DBTX, so the same
// code runs on *sql.DB or inside a transaction opened with dbx.WithTx.
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "posts", b)
//	b, _ = repo.Get(ctx, "posts")
//	_ = repo.Delete(ctx, "posts")
package kv
