// Package viz renders point groups in the terminal: a braille-cell canvas, a
// rotatable wireframe camera, and the interactive bubbletea application that
// drives the scene session frame by frame.
package viz
