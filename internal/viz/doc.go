// Package viz renders solver runs in the terminal.
//
// [Model] is a bubbletea program that replays a recorded iteration trace
// over an ascii plot of the function, with keyboard scrubbing. Styles are
// shared lipgloss definitions used by the CLI output as well.
package viz
