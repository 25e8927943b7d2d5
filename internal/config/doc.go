package config

// Package config persists the small application record (binary path,
// sandbox directory, selected site) as a JSON file. Saves are atomic:
// the file is written to a temp name and renamed into place.
