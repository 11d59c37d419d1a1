package views

import "github.com/pterm/pterm"

func red(s string) string   { return pterm.Red(s) }
func green(s string) string { return pterm.Green(s) }
func blue(s string) string  { return pterm.Blue(s) }
func gray(s string) string  { return pterm.Gray(s) }
