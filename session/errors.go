package session

import "errors"

var OperationInFlightErr = errors.New("auth operation already in flight")
