package dashboard

// Session is the authenticated charity context. It is created by a
// successful login, handed to every API call, and dropped at logout.
// Nothing reads it from global state.
type Session struct {
	CharityID string
	Name      string
	Email     string
	Location  string
	Token     string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
