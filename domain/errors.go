package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// wallet session
	ErrWalletUnavailable = errors.New("wallet capability unavailable")
	ErrUserRejected      = errors.New("request rejected by user")
	ErrNotConnected      = errors.New("wallet not connected")

	// networks
	ErrNetworkUnavailable = errors.New("network could not be determined")
	ErrChainUnrecognized  = errors.New("chain not recognized by wallet")
	ErrChainSwitchFailed  = errors.New("chain switch failed")
	ErrChainAddFailed     = errors.New("chain add failed")
	ErrDuplicateChainId   = errors.New("duplicate chain id in network registry")
	ErrInvalidChainId     = errors.New("invalid chain id")

	// payment
	ErrTransferFailed  = errors.New("transfer failed")
	ErrInvalidCartItem = errors.New("cart item has no creator address")
	ErrInvalidPrice    = errors.New("invalid price")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
