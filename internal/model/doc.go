package model

// Package model defines domain data structures used across the app: the
// slideshow gallery, priced catalog entries, and controller state enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
