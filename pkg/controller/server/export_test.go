package server

var ErrorToStatusCodeForTest = errorToStatusCode

var WriteJSONForTest = writeJSON
