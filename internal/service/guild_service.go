package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Discord 返回的 "Unknown Guild" 错误码
const discordUnknownGuildCode = 10004

const (
	fallbackGuildName        = "RealCloud"
	fallbackGuildMemberCount = 1500
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// GuildInfo mirrors the subset of the Discord guild object the site renders.
type GuildInfo struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	ApproximateMemberCount int    `json:"approximate_member_count"`
	MemberCount            int    `json:"member_count"`
}

// Members prefers the approximate count and falls back to the exact one.
func (g GuildInfo) Members() int {
	if g.ApproximateMemberCount > 0 {
		return g.ApproximateMemberCount
	}
	return g.MemberCount
}

type discordErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GuildService proxies the Discord guild endpoint for the landing page.
// Every failure path resolves to a fixed fallback record so the page
// always has something to render.
type GuildService struct {
	http     httpDoer
	baseURL  string
	botToken string
}

// NewGuildService returns a fetcher with a bounded-timeout HTTP client.
func NewGuildService(botToken, baseURL string) *GuildService {
	return &GuildService{
		http:     &http.Client{Timeout: 10 * time.Second},
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		botToken: strings.TrimSpace(botToken),
	}
}

// SetHTTPClient 允许测试注入替身客户端。
func (s *GuildService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.http = client
}

// FetchGuild resolves guild info for the given id. It never returns an
// error: any failure yields the fallback record instead.
func (s *GuildService) FetchGuild(ctx context.Context, guildID string) GuildInfo {
	if s.botToken == "" {
		log.Printf("[discord] bot token not configured, using fallback guild data")
		return s.fallback(guildID)
	}

	// with_counts=true 才会返回 approximate_member_count
	url := fmt.Sprintf("%s/guilds/%s?with_counts=true", s.baseURL, guildID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[discord] failed to build guild request: %v", err)
		return s.fallback(guildID)
	}
	req.Header.Set("Authorization", "Bot "+s.botToken)

	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("[discord] guild request failed: %v", err)
		return s.fallback(guildID)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[discord] failed to read guild response: %v", err)
		return s.fallback(guildID)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr discordErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code == discordUnknownGuildCode {
			log.Printf("[discord] unknown guild %s, using fallback guild data", guildID)
		} else {
			log.Printf("[discord] guild request returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
		}
		return s.fallback(guildID)
	}

	var info GuildInfo
	if err := json.Unmarshal(body, &info); err != nil {
		log.Printf("[discord] failed to decode guild response: %v", err)
		return s.fallback(guildID)
	}
	return info
}

func (s *GuildService) fallback(guildID string) GuildInfo {
	return GuildInfo{
		ID:                     guildID,
		Name:                   fallbackGuildName,
		ApproximateMemberCount: fallbackGuildMemberCount,
	}
}
