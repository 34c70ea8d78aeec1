package analystv1

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the stored role and a bearer token for later calls.
type LoginResponse struct {
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

type SaveHistoryRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HistoryEntry struct {
	Id       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Time     string `json:"time"`
}

type SaveHistoryResponse struct {
	Entry *HistoryEntry `json:"entry"`
}

// ListMyHistoryResponse lists the caller's entries: id, question, answer, time.
type ListMyHistoryResponse struct {
	Entries []*HistoryEntry `json:"entries"`
}

// ListAllHistoryResponse lists every entry: id, username, question, time.
type ListAllHistoryResponse struct {
	Entries []*HistoryEntry `json:"entries"`
}

type DeleteHistoryRequest struct {
	Id int64 `json:"id"`
}

// DeleteHistoryResponse reports whether a row was removed; deleting an unknown id is not an error.
type DeleteHistoryResponse struct {
	Deleted bool `json:"deleted"`
}

func (x *LoginResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *LoginResponse) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ListMyHistoryResponse) GetEntries() []*HistoryEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

func (x *ListAllHistoryResponse) GetEntries() []*HistoryEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}
