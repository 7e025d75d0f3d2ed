package handler

import "net/http"

// SignUp handles POST /auth/signup. The new account is signed in at once.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var body SignUpRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.svc.Auth.SignUp(r.Context(), body.Email, body.Password, body.ConfirmPassword)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// SignIn handles POST /auth/signin.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var body SignInRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.svc.Auth.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SignOut handles POST /auth/signout.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Auth.SignOut(r.Context(), session(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
