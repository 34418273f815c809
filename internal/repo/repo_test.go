package repo

import (
	"errors"
	"testing"
)

// TestParseURL verifies remote URL parsing for all supported shapes.
//
// Scenario: User passes a git remote URL on the command line
// Expected: Host, user and repo are extracted; the .git suffix is stripped
func TestParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Info
	}{
		{
			name: "https with .git",
			url:  "https://github.com/acme/widgets.git",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/acme/widgets",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
		{
			name: "scp-like ssh",
			url:  "git@github.com:acme/widgets.git",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
		{
			name: "scp-like ssh without .git",
			url:  "git@gitlab.com:acme/widgets",
			want: Info{Host: "gitlab.com", User: "acme", Repo: "widgets"},
		},
		{
			name: "ssh protocol",
			url:  "ssh://git@github.com/acme/widgets.git",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
		{
			name: "surrounding whitespace",
			url:  "  https://github.com/acme/widgets.git\n",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseURL(tt.url)
			if err != nil {
				t.Fatalf("ParseURL(%q) = %v, want nil", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ParseURL(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

// TestParseURL_Invalid verifies rejection of unsupported URLs.
//
// Scenario: User passes a malformed or unsupported remote URL
// Expected: ErrInvalid is returned
func TestParseURL_Invalid(t *testing.T) {
	t.Parallel()

	urls := []string{
		"invalid",
		"https://github.com/acme",       // missing repo segment
		"git@github.com/acme/repo.git",  // wrong separator for scp shape
		"ftp://github.com/acme/widgets", // unsupported scheme
		"",
	}

	for _, url := range urls {
		if _, err := ParseURL(url); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseURL(%q) = %v, want ErrInvalid", url, err)
		}
	}
}

// TestInfoFromPath verifies decoding of managed worktree paths.
//
// Scenario: A worktree path under the managed root is decoded
// Expected: Host, user, repo and branch are recovered, including branches
// containing slashes
func TestInfoFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root string
		path string
		want Info
	}{
		{
			name: "simple branch",
			root: "/home/user/grm",
			path: "/home/user/grm/github.com/acme/widgets+main",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets", Branch: "main"},
		},
		{
			name: "hierarchical branch",
			root: "/home/user/grm",
			path: "/home/user/grm/github.com/acme/widgets+feature/login",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets", Branch: "feature/login"},
		},
		{
			name: "deeply nested branch",
			root: "/grm",
			path: "/grm/github.com/acme/widgets+feature/auth/oidc",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets", Branch: "feature/auth/oidc"},
		},
		{
			name: "no branch",
			root: "/home/user/grm",
			path: "/home/user/grm/github.com/acme/widgets",
			want: Info{Host: "github.com", User: "acme", Repo: "widgets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := InfoFromPath(tt.root, tt.path)
			if err != nil {
				t.Fatalf("InfoFromPath(%q, %q) = %v, want nil", tt.root, tt.path, err)
			}
			if got != tt.want {
				t.Errorf("InfoFromPath(%q, %q) = %+v, want %+v", tt.root, tt.path, got, tt.want)
			}
		})
	}
}

// TestInfoFromPath_Invalid verifies rejection of paths outside the scheme.
//
// Scenario: A path outside the root or with too few components is decoded
// Expected: ErrInvalid is returned
func TestInfoFromPath_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root string
		path string
	}{
		{"outside root", "/home/user/grm", "/tmp/github.com/acme/widgets+main"},
		{"too few components", "/home/user/grm", "/home/user/grm/github.com/acme"},
		{"root itself", "/home/user/grm", "/home/user/grm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := InfoFromPath(tt.root, tt.path); !errors.Is(err, ErrInvalid) {
				t.Errorf("InfoFromPath(%q, %q) = %v, want ErrInvalid", tt.root, tt.path, err)
			}
		})
	}
}

// TestPathBuilders verifies the worktree and shared storage path layout.
func TestPathBuilders(t *testing.T) {
	t.Parallel()

	info := Info{Host: "github.com", User: "acme", Repo: "widgets"}

	if got, want := info.WorktreePath("/grm", "main"), "/grm/github.com/acme/widgets+main"; got != want {
		t.Errorf("WorktreePath = %q, want %q", got, want)
	}
	if got, want := info.SharedPath("/grm", ".env"), "/grm/.shared/github.com/acme/widgets/.env"; got != want {
		t.Errorf("SharedPath = %q, want %q", got, want)
	}
	if got, want := info.SharedRoot("/grm"), "/grm/.shared/github.com/acme/widgets"; got != want {
		t.Errorf("SharedRoot = %q, want %q", got, want)
	}
}

// TestRoundTrip verifies that building a worktree path and decoding it
// recovers the identity, for branches with and without slashes.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	branches := []string{"main", "develop", "feature/login", "feature/auth/oidc", "release-1.2"}
	info := Info{Host: "git.example.org", User: "platform", Repo: "core"}

	for _, branch := range branches {
		path := info.WorktreePath("/grm", branch)
		got, err := InfoFromPath("/grm", path)
		if err != nil {
			t.Fatalf("InfoFromPath(%q) = %v, want nil", path, err)
		}
		want := info
		want.Branch = branch
		if got != want {
			t.Errorf("round trip via %q = %+v, want %+v", path, got, want)
		}
	}
}
