package models

import "errors"

var (
	ErrInvalidMarketID   = errors.New("invalid market ID")
	ErrInvalidMarketKind = errors.New("invalid market kind")

	ErrInvalidFeeDecimals     = errors.New("invalid fee percent decimals")
	ErrInvalidPercentDecimals = errors.New("invalid percent decimals")
	ErrInvalidDisplayDecimals = errors.New("invalid display decimals")

	ErrSnapshotRequired = errors.New("state snapshot is required")
)
