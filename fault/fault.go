// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountAlreadyInUse       = ExistsError("account already in use")
	AccountNotFound           = NotFoundError("account not found")
	AlreadyInitialised        = ExistsError("already initialised")
	AuthorisationMismatch     = InvalidError("authorisation mismatch")
	BumpNotFound              = NotFoundError("no valid bump for derived address")
	CannotDecodeAccount       = RecordError("cannot decode account")
	CannotDecodeAddress       = RecordError("cannot decode address")
	CannotDecodePrivateKey    = RecordError("cannot decode private key")
	CannotDecodeSeed          = RecordError("cannot decode seed")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	CryptoFailed              = ProcessError("encrypt/decrypt failed")
	DatabaseIsNotSet          = ProcessError("database is not set")
	DuplicateInitialisation   = ExistsError("duplicate initialisation")
	FaucetDisabled            = InvalidError("faucet is disabled on this chain")
	FileNotFound              = NotFoundError("file not found")
	IdentityFileExists        = ExistsError("identity file already exists")
	InsufficientAmount        = InvalidError("insufficient amount")
	InsufficientFunds         = InvalidError("insufficient funds")
	InvalidAccountData        = RecordError("invalid account data")
	InvalidAmount             = InvalidError("invalid amount")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidInterval           = InvalidError("invalid interval")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidKeyLength          = LengthError("invalid key length")
	InvalidKeyType            = InvalidError("invalid key type")
	InvalidOperation          = InvalidError("invalid operation")
	InvalidOwner              = InvalidError("invalid owner")
	InvalidPassword           = InvalidError("invalid password")
	InvalidRecord             = RecordError("invalid record")
	InvalidSeedHeader         = RecordError("invalid seed header")
	InvalidSeedLength         = LengthError("invalid seed length")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NonceReused               = InvalidError("nonce already used")
	NotAuthorised             = InvalidError("not authorised")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = RecordError("not a private key")
	NotPublicKey              = RecordError("not a public key")
	OnCurve                   = InvalidError("address is on the ed25519 curve")
	PasswordMismatch          = InvalidError("password mismatch")
	RateLimiting              = InvalidError("rate limiting")
	SeedTooLong               = LengthError("seed too long")
	SignatureTooLong          = LengthError("signature too long")
	TooManySeeds              = LengthError("too many seeds")
	TransactionAlreadyStarted = ProcessError("transaction already started")
	TransactionNotStarted     = ProcessError("transaction not started")
	VaultAlreadyExists        = ExistsError("vault already exists")
	VaultNotInitialised       = NotFoundError("vault not initialised")
	WrongNetworkForPublicKey  = InvalidError("wrong network for public key")
	WrongPassword             = InvalidError("wrong password")
	WrongProgram              = InvalidError("instruction is for another program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
