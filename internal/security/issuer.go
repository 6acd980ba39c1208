package security

import "time"

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// Issuer mints access/refresh pairs. Tokens are not stored anywhere: any
// number of valid pairs for the same user may coexist, and none can be
// revoked before expiry.
type Issuer struct {
	engine     *Engine
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(engine *Engine, accessTTL, refreshTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Issuer{engine: engine, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (i *Issuer) IssueAccess(userID int64) (string, error) {
	return i.engine.Encode(userID, TokenTypeAccess, i.accessTTL)
}

func (i *Issuer) IssueRefresh(userID int64) (string, error) {
	return i.engine.Encode(userID, TokenTypeRefresh, i.refreshTTL)
}

func (i *Issuer) IssuePair(userID int64) (*TokenPair, error) {
	access, err := i.IssueAccess(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := i.IssueRefresh(userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
