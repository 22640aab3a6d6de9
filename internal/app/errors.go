package app

import "errors"

var ErrNoDataSource = errors.New("no data source configured: set data.document or data.gtfs")
