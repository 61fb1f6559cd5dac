// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"reflect"
	"testing"
)

func TestCompilePatterns(t *testing.T) {
	p, err := compilePatterns()
	if err != nil {
		t.Fatalf("compilePatterns() failed: %v", err)
	}
	if len(p.urls) != 3 {
		t.Errorf("got %d url patterns, want 3", len(p.urls))
	}
	if len(p.cli) != 4 {
		t.Errorf("got %d cli patterns, want 4", len(p.cli))
	}
	if p.codeBlock == nil || p.inlineCode == nil {
		t.Error("snippet patterns not compiled")
	}
}

func TestGitReferences(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "hosted repository references",
			text: "fork github.com/example/repo or gitlab.com/group/project",
			want: []string{"github.com/example/repo", "gitlab.com/group/project"},
		},
		{
			name: "clone invocation",
			text: "git clone https://github.com/example/repo.git",
			want: []string{"github.com/example/repo", "git clone https://github.com/example/repo.git"},
		},
		{
			name: "git subcommands",
			text: "git commit -m msg then git push origin",
			want: []string{"git commit -m", "git push origin"},
		},
		{
			name: "no references",
			text: "nothing hosted here",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.GitReferences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GitReferences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestPackageDirectives(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "npm install",
			text: "npm install express",
			want: []string{"npm install express"},
		},
		{
			name: "pip and cargo",
			text: "pip install requests\ncargo add serde",
			want: []string{"pip install requests", "cargo add serde"},
		},
		{
			name: "go get",
			text: "go get github.com/spf13/cobra",
			want: []string{"go get github.com/spf13/cobra"},
		},
		{
			name: "python import statement",
			text: "from collections import defaultdict",
			want: []string{"import defaultdict", "from collections import"},
		},
		{
			name: "no directives",
			text: "plain prose",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.PackageDirectives(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PackageDirectives(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
