// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalTables = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			cookie   TEXT NOT NULL,
			email    TEXT NOT NULL DEFAULT '',
			saved_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS capture_journal (
			id              INTEGER PRIMARY KEY CHECK (id = 1),
			conversation_id INTEGER NOT NULL,
			transcript      TEXT NOT NULL DEFAULT '',
			mark            INTEGER NOT NULL DEFAULT 0,
			summary         TEXT NOT NULL DEFAULT '',
			blocks          TEXT NOT NULL DEFAULT '[]',
			meta            TEXT,
			updated_at      TIMESTAMP NOT NULL
		);`

	saveLocalSession = `
		INSERT INTO session (id, cookie, email, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			cookie   = excluded.cookie,
			email    = excluded.email,
			saved_at = excluded.saved_at;`

	loadLocalSession = `SELECT cookie, email, saved_at FROM session WHERE id = 1;`

	clearLocalSession = `DELETE FROM session;`

	saveCaptureJournal = `
		INSERT INTO capture_journal (id, conversation_id, transcript, mark, summary, blocks, meta, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			conversation_id = excluded.conversation_id,
			transcript      = excluded.transcript,
			mark            = excluded.mark,
			summary         = excluded.summary,
			blocks          = excluded.blocks,
			meta            = excluded.meta,
			updated_at      = excluded.updated_at;`

	loadCaptureJournal = `
		SELECT conversation_id, transcript, mark, summary, blocks, meta, updated_at
		FROM capture_journal
		WHERE id = 1;`

	clearCaptureJournal = `DELETE FROM capture_journal;`
)
