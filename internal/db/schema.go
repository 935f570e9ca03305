package db

// tables.
const (
	tableBookmarksName = "bookmarks"
	tableSyncName      = "sync"
)

// schemaBookmarks is the schema for the bookmarks table.
var schemaBookmarks = tableSchema{
	name:  tableBookmarksName,
	sql:   tableBookmarksSchema,
	index: tableBookmarksIndex,
}

// schemaSync is the schema for the single-row sync stamp table.
var schemaSync = tableSchema{
	name: tableSyncName,
	sql:  tableSyncSchema,
}

const (
	tableBookmarksSchema = `
    CREATE TABLE IF NOT EXISTS bookmarks (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        url         TEXT    NOT NULL UNIQUE,
        title       TEXT    DEFAULT "",
        desc        TEXT    DEFAULT "",
        tags        TEXT    DEFAULT "",
        hash        TEXT    NOT NULL,
        created_at  TEXT    DEFAULT "",
        shared      BOOLEAN DEFAULT TRUE,
        to_read     BOOLEAN DEFAULT FALSE
    );`

	tableBookmarksIndex = `
    CREATE UNIQUE INDEX IF NOT EXISTS idx_bookmarks_url ON bookmarks(url);`

	tableSyncSchema = `
    CREATE TABLE IF NOT EXISTS sync (
        id              INTEGER PRIMARY KEY CHECK (id = 1),
        last_downloaded TEXT NOT NULL
    );`
)
