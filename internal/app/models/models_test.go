package models

import (
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Types must live in files the regular build compiles, not in *_test.go.
func TestModelTypesInBuildFiles(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)

	declared := map[string]bool{}
	fset := token.NewFileSet()
	for _, name := range pkg.GoFiles {
		f, err := parser.ParseFile(fset, filepath.Join(pkg.Dir, name), nil, 0)
		require.NoError(t, err, name)
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				declared[spec.(*ast.TypeSpec).Name.Name] = true
			}
		}
	}

	for _, typ := range []string{
		"Student", "StudentFilter", "DuplicateField",
		"Notice", "NoticeUpdate",
		"SkillTestQuestion", "SkillTestEntrant",
		"Submission", "FileRef",
	} {
		assert.True(t, declared[typ], "%s is not declared in a non-test file", typ)
	}
}

func TestTestFilesAreTests(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range pkg.TestGoFiles {
		f, err := parser.ParseFile(fset, filepath.Join(pkg.Dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err, name)
		imports := map[string]bool{}
		for _, imp := range f.Imports {
			imports[imp.Path.Value] = true
		}
		assert.True(t, imports[`"testing"`], "%s does not import testing", name)
	}
}
