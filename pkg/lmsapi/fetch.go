// pkg/lmsapi/fetch.go
package lmsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ListFetcher builds a Fetcher over a list endpoint (e.g.
// "/api/accounts"). The query carries page, size, keyword, and every
// filter as its own parameter, matching what the server's paging layer
// parses.
func (c *Client) ListFetcher(path string) Fetcher[Row] {
	return func(ctx context.Context, q ListQuery) ([]Row, PageMeta, error) {
		params := url.Values{}
		params.Set("page", strconv.Itoa(q.Page))
		params.Set("size", strconv.Itoa(q.Size))
		if q.Keyword != "" {
			params.Set("keyword", q.Keyword)
		}
		for k, v := range q.Filters {
			params.Set(k, v)
		}

		body, err := c.GetJSON(ctx, path, params)
		if err != nil {
			return nil, PageMeta{}, err
		}
		return UnwrapRows(body), UnwrapMeta(body), nil
	}
}

// StatusCall builds a CallFunc that PATCHes {path}/{id}/status with the
// new status, the shape every status-toggle endpoint accepts.
func (c *Client) StatusCall(path string) CallFunc {
	return func(ctx context.Context, id int64, status string) error {
		_, err := c.PatchJSON(ctx, fmt.Sprintf("%s/%d/status", path, id), map[string]string{"status": status})
		return err
	}
}

// Session is the login response payload.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AccountID int64     `json:"-"`
	LoginID   string    `json:"-"`
	Name      string    `json:"-"`
	Role      string    `json:"-"`
}

// Login signs in with a login id and password and installs the returned
// bearer token on the client.
func (c *Client) Login(ctx context.Context, loginID, password string) (Session, error) {
	body, err := c.PostJSON(ctx, "/api/auth/login", map[string]string{
		"loginId":  loginID,
		"password": password,
	})
	if err != nil {
		return Session{}, err
	}

	data := UnwrapData(body)
	sess := Session{
		Token:     data.StrOr("", "token"),
		ExpiresAt: data.Time("expiresAt"),
	}
	if user, ok := data["user"].(map[string]any); ok {
		u := Row(user)
		sess.AccountID = u.Int64("accountId", "id")
		sess.LoginID = u.StrOr("", "loginId")
		sess.Name = u.StrOr("", "name")
		sess.Role = u.StrOr("", "role")
	}
	if sess.Token == "" {
		return Session{}, fmt.Errorf("login response carried no token")
	}
	c.SetToken(sess.Token)
	return sess, nil
}
