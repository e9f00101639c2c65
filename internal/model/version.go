package model

// Version is the current pathmanager release.
const Version = "0.2.0"
