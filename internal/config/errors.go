package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
)
