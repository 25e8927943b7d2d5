package ui

// Package ui implements the Fyne front-end: a single window with the
// binary picker, URL entry, progress display and menus, wired to the
// download runner and the configuration store.
