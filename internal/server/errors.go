package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the configuration
// enables no transport at all.
var errNoServersAreCreated = errors.New("no servers are created")
