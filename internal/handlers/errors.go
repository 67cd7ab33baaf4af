package handlers

import "errors"

var errDestroyed = errors.New("handler destroyed")
