package hotelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/example/oceanview/internal/domain/user"
)

const membersPath = "/members"

var _ user.Directory = (*Client)(nil)

type memberWire struct {
	ID       id     `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (c *Client) ListMembers(ctx context.Context) ([]user.Member, error) {
	const op = "list members"
	status, body, err := c.do(ctx, http.MethodGet, membersPath, nil)
	if err != nil {
		return nil, requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return nil, requestFailed(op, status, body, nil)
	}
	var wire []memberWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, requestFailed(op, status, body, fmt.Errorf("parse members: %w", err))
	}
	out := make([]user.Member, 0, len(wire))
	for _, m := range wire {
		role, err := user.ParseRole(m.Role)
		if err != nil {
			role = user.Role(m.Role)
		}
		out = append(out, user.Member{ID: string(m.ID), FullName: m.FullName, Email: m.Email, Role: role})
	}
	return out, nil
}

func (c *Client) UpdateMember(ctx context.Context, memberID string, u user.MemberUpdate) (string, error) {
	const op = "update member"
	status, body, err := c.do(ctx, http.MethodPut, membersPath+"/"+url.PathEscape(memberID), u)
	if err != nil {
		return "", requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return "", requestFailed(op, status, body, nil)
	}
	var res struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &res)
	if res.Message == "" {
		res.Message = "Member updated successfully!"
	}
	return res.Message, nil
}

func (c *Client) DeleteMember(ctx context.Context, memberID string) error {
	const op = "delete member"
	status, body, err := c.do(ctx, http.MethodDelete, membersPath+"/"+url.PathEscape(memberID), nil)
	if err != nil {
		return requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return requestFailed(op, status, body, nil)
	}
	return nil
}
