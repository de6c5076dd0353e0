package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ShowInfo shows a modal information box.
func (rv *RootView) ShowInfo(title, message string) {
	if rv == nil || rv.closed {
		return
	}
	MessageBox(Icon("info"), Title(title), Msg(message))
}

// ShowWarning shows a modal warning box.
func (rv *RootView) ShowWarning(title, message string) {
	if rv == nil || rv.closed {
		return
	}
	MessageBox(Icon("warning"), Title(title), Msg(message))
}

// Warn reports a non-fatal problem; it satisfies the controller's notifier.
func (rv *RootView) Warn(title, message string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Warn(title, "detail", message)
	}
	rv.ShowWarning(title, message)
}

// ChooseFolder asks for a directory and returns "" when cancelled.
func (rv *RootView) ChooseFolder(title string) string {
	return ChooseDirectory(Title(title), Mustexist(true))
}

// ChooseFolder is the startup picker used before a RootView exists.
func ChooseFolder(title string) string {
	return ChooseDirectory(Title(title), Mustexist(true))
}
