// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/guildhall/models"
)

// RESTClient implements Client against the platform's HTTP API.
type RESTClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewRESTClient creates a client for the given base URL and API token.
func NewRESTClient(baseURL, token string) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("platform: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("platform: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("platform: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("platform: %s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("platform: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("platform: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *RESTClient) Reply(ctx context.Context, env models.Envelope, reply Reply) error {
	return c.do(ctx, http.MethodPost, "/interactions/"+url.PathEscape(env.ID)+"/reply", reply, nil)
}

func (c *RESTClient) Send(ctx context.Context, channelID string, msg Message) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/channels/"+url.PathEscape(channelID)+"/messages", msg, &created)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *RESTClient) EditMessage(ctx context.Context, channelID, messageID string, msg Message) error {
	return c.do(ctx, http.MethodPatch, "/channels/"+url.PathEscape(channelID)+"/messages/"+url.PathEscape(messageID), msg, nil)
}

func (c *RESTClient) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return c.do(ctx, http.MethodDelete, "/channels/"+url.PathEscape(channelID)+"/messages/"+url.PathEscape(messageID), nil, nil)
}

func (c *RESTClient) GuildRoles(ctx context.Context, guildID string) ([]Role, error) {
	var roles []Role
	if err := c.do(ctx, http.MethodGet, "/guilds/"+url.PathEscape(guildID)+"/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *RESTClient) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	var held struct {
		RoleIDs []string `json:"role_ids"`
	}
	path := "/guilds/" + url.PathEscape(guildID) + "/members/" + url.PathEscape(userID) + "/roles"
	if err := c.do(ctx, http.MethodGet, path, nil, &held); err != nil {
		return nil, err
	}
	return held.RoleIDs, nil
}

func (c *RESTClient) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	path := "/guilds/" + url.PathEscape(guildID) + "/members/" + url.PathEscape(userID) + "/roles/" + url.PathEscape(roleID)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *RESTClient) RemoveRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	body := struct {
		RoleIDs []string `json:"role_ids"`
	}{RoleIDs: roleIDs}
	path := "/guilds/" + url.PathEscape(guildID) + "/members/" + url.PathEscape(userID) + "/roles"
	return c.do(ctx, http.MethodDelete, path, body, nil)
}

func (c *RESTClient) GuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	var channels []Channel
	if err := c.do(ctx, http.MethodGet, "/guilds/"+url.PathEscape(guildID)+"/channels", nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *RESTClient) CreateChannel(ctx context.Context, guildID string, req CreateChannelRequest) (Channel, error) {
	var created Channel
	if err := c.do(ctx, http.MethodPost, "/guilds/"+url.PathEscape(guildID)+"/channels", req, &created); err != nil {
		return Channel{}, err
	}
	return created, nil
}

func (c *RESTClient) DeleteChannel(ctx context.Context, channelID string) error {
	return c.do(ctx, http.MethodDelete, "/channels/"+url.PathEscape(channelID), nil, nil)
}

func (c *RESTClient) RespondChoices(ctx context.Context, env models.Envelope, choices []models.Choice) error {
	body := struct {
		Choices []models.Choice `json:"choices"`
	}{Choices: choices}
	return c.do(ctx, http.MethodPost, "/interactions/"+url.PathEscape(env.ID)+"/choices", body, nil)
}
