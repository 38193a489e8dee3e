package domain

import (
	"bytes"
	"encoding/json"
)

// Role is an authorization group. Type is the short code (1–25 chars) shown
// in listings and referenced by users.
type Role struct {
	Internal    string `json:"internal,omitempty"`
	Created     int64  `json:"created,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RoleList accepts both shapes the backend emits for a user's roles: a single
// role object or an array of them. It is always normalized to a list
// internally and always marshals as an array.
type RoleList []Role

func (rl *RoleList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*rl = nil
		return nil
	}
	if data[0] == '[' {
		var many []Role
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*rl = many
		return nil
	}
	var one Role
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*rl = RoleList{one}
	return nil
}

func (rl RoleList) MarshalJSON() ([]byte, error) {
	if rl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Role(rl))
}
