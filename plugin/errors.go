package plugin

import "errors"

var (
	// ErrAlreadyRecording is returned by StartRecord while a recording
	// session is active or its producer has not yet wound down.
	ErrAlreadyRecording = errors.New("a recording session is already active")

	// ErrRuntimeStopped is returned by StartRecord after Stop has been called.
	ErrRuntimeStopped = errors.New("datasource runtime has been stopped")

	// ErrPluginVersionNotSet is returned by GetVersion on a datasource that
	// was not built via NewDatasource.
	ErrPluginVersionNotSet = errors.New("plugin version not set")
)
