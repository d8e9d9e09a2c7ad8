package domain

import "errors"

// ErrMissingColumn is returned when the dataset header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrEmptyDataset is returned when no renewable records survive the load.
// Serving a dashboard over zero rows would leave every facet undefined, so
// startup treats this as fatal.
var ErrEmptyDataset = errors.New("dataset contains no renewable records")
