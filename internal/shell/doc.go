// Package shell implements the interactive menu over a loaded Record Store.
//
// The shell has a single "menu" state. Options 1-8 run an action and return
// to the menu; option 9 (or end of input) ends the loop. Anything else is
// rejected and the menu is shown again.
//
// Action failures, including export write errors, are printed and the loop
// continues. The Record Store is passed in explicitly and never mutated.
package shell
