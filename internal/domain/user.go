package domain

// UserAccount is a registered storefront user. Username is the
// case-sensitive directory key. The password is stored and compared as
// plaintext: this is a single-browser demo trust model, not an oversight.
// Accounts are never deleted and the password has no update path.
type UserAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}
