package storage

import "errors"

// ErrInsufficientFunds is returned when a wallet's combined buckets cannot cover a spend.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrWalletNotFound is returned when no wallet exists for the account.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrWalletExists is returned when creating a wallet for an account that already has one.
var ErrWalletExists = errors.New("wallet already exists")

// ErrJobNotFound is returned when a job does not exist or belongs to a different account.
var ErrJobNotFound = errors.New("job not found")

// ErrJobAlreadyExists is returned when a job id is reused on create.
var ErrJobAlreadyExists = errors.New("job already exists")

// ErrJobTerminal is returned when an update would mutate a job that has already
// reached a terminal status.
var ErrJobTerminal = errors.New("job already in a terminal state")

// ErrJobOutpaced is returned when an update would move a live job's progress
// backward because a concurrent writer is already further along.
var ErrJobOutpaced = errors.New("job progressed past this update")

// ErrDuplicateSpend is returned when a spend for the same reference has already
// been recorded. The wallet is untouched.
var ErrDuplicateSpend = errors.New("spend already recorded for reference")

// ErrAlreadyRefunded is returned when a refund for the same reference has
// already been recorded. The wallet is untouched.
var ErrAlreadyRefunded = errors.New("refund already recorded for reference")
