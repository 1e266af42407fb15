package service

// Database path - variable to allow testing with different paths
var dbPath = "data/badger"

// backupDir is where database backups are written
var backupDir = "data/backups"
