// Package ui provides the visual components of the GiggleGen TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────┐
//	│ 😂 GiggleGen (gradient)        Jokes: 3  🌙 │
//	│         Your Daily Dose of Laughter         │
//	│                                             │
//	│  General Programming Dad Dank 🦁 Thala      │
//	│  ╭───────────────────────────────────────╮  │
//	│  │ joke text, word wrapped               │  │
//	│  │ How funny was it?   😴 😊 😂           │  │
//	│  ╰───────────────────────────────────────╯  │
//	│        ⏎ Get Joke   s Share   y Copy        │
//	│ key hints, or a flash message               │
//	└─────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: singleton holding layout sizes derived from the terminal size.
//
// Header: gradient title bar with the jokes counter and the theme icon, plus
// the subtitle line.
//
// Card: category bar, joke text, rating row and action buttons, rendered
// from a session.State.
//
// Overlay: draws the drifting backdrop, transient markers and the thala
// helicopter over the finished frame using an ultraviolet screen buffer.
//
// Footer: key hints from KeyMap via bubbles/help, replaced by a flash
// message while one is active.
//
// Modal: popup container for the category picker and help screen defined in
// the modals subpackage.
//
// # Themes
//
// Two palettes, ThemeLight and ThemeDark. SetTheme swaps the Color*
// variables and rebuilds every style, including the ones the modals
// package receives through RefreshModalStyles.
package ui
