package storage

// HistoryKey is the slot holding the screening history log.
const HistoryKey = "vitalis_history"
