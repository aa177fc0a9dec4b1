package cli

var RunFullSync = runFullSync
