package model

// Package model holds the shared data types: download jobs, their status
// lifecycle, and the supported sites with their domain allow-lists.
