package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS history (
    seq             INTEGER PRIMARY KEY AUTOINCREMENT,
    calculation_id  TEXT NOT NULL,
    recorded_at     TEXT NOT NULL,
    income          TEXT NOT NULL,
    category        TEXT NOT NULL,
    amount          TEXT NOT NULL,
    savings_goal    TEXT NOT NULL,
    balance         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_calc ON history(calculation_id);
`
