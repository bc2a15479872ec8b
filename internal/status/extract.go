package status

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNotString  = errors.New("not a string constant")
	ErrBadKeyword = errors.New("bad keyword")
	ErrOutOfRange = errors.New("argument index out of range")
)

// stringConstant evaluates an ast.Expr representing a string constant
func stringConstant(expr ast.Expr) (string, error) {
	switch val := expr.(type) {
	case *ast.BasicLit:
		if val.Kind != token.STRING {
			return "", ErrNotString
		}
		return strconv.Unquote(val.Value)
	// Support simple string concatenation
	case *ast.BinaryExpr:
		if val.Op != token.ADD {
			return "", ErrNotString
		}
		left, err := stringConstant(val.X)
		if err != nil {
			return "", err
		}
		right, err := stringConstant(val.Y)
		if err != nil {
			return "", err
		}
		return left + right, nil
	case *ast.ParenExpr:
		return stringConstant(val.X)
	}
	return "", ErrNotString
}

// Keyword identifies a function taking a message key as argument.
type Keyword struct {
	name, pkg string
	key       int
}

// ParseKeyword parses a keyword spec of the form [PKG.]FUNC[:ARG], where
// ARG is the 1-based position of the key argument.
func ParseKeyword(spec string) (*Keyword, error) {
	function, arg, hasArg := strings.Cut(spec, ":")
	var pkg string
	if idx := strings.IndexByte(function, '.'); idx >= 0 {
		pkg = function[:idx]
		function = function[idx+1:]
		if strings.IndexByte(function, '.') >= 0 {
			return nil, ErrBadKeyword
		}
	}
	if function == "" {
		return nil, ErrBadKeyword
	}

	k := &Keyword{name: function, pkg: pkg}
	if hasArg {
		val, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		if val < 1 {
			return nil, ErrBadKeyword
		}
		k.key = val - 1
	}
	return k, nil
}

func (k *Keyword) Match(call *ast.CallExpr) bool {
	var pkg, name string

	switch e := call.Fun.(type) {
	case *ast.Ident:
		name = e.Name
	case *ast.SelectorExpr:
		name = e.Sel.Name
		if ident, ok := e.X.(*ast.Ident); ok {
			pkg = ident.Name
		}
	default:
		return false
	}

	if name != k.name {
		return false
	}
	// If the keyword includes a package qualifier, make sure it matches
	return k.pkg == "" || k.pkg == pkg
}

// Extract returns the message key passed to call.
func (k *Keyword) Extract(call *ast.CallExpr) (string, error) {
	if k.key >= len(call.Args) {
		return "", ErrOutOfRange
	}
	return stringConstant(call.Args[k.key])
}

type Location struct {
	file string
	line int
}

func (l Location) String() string {
	return l.file + ":" + strconv.Itoa(l.line)
}

type visitor struct {
	*Extractor

	fset *token.FileSet
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	// We're only interested in calls
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return v
	}

	for _, k := range v.Keywords {
		if !k.Match(call) {
			continue
		}
		key, err := k.Extract(call)
		if err != nil {
			break
		}
		pos := v.fset.Position(node.Pos())
		v.Keys[key] = append(v.Keys[key], Location{file: pos.Filename, line: pos.Line})
		break
	}
	return v
}

// Extractor collects the message keys referenced by Go source files.
type Extractor struct {
	Keys        map[string][]Location
	Keywords    []*Keyword
	Directories []string
}

// AddDefaultKeywords registers the catalogue lookup methods.
func (e *Extractor) AddDefaultKeywords() {
	for _, spec := range []string{
		"Translate:1",
		"Lookup:1",
	} {
		kw, err := ParseKeyword(spec)
		if err != nil {
			panic(err)
		}
		e.Keywords = append(e.Keywords, kw)
	}
}

func (e *Extractor) openFile(filename string) (f *os.File, err error) {
	if len(e.Directories) == 0 || filepath.IsAbs(filename) {
		return os.Open(filename)
	}
	for _, dir := range e.Directories {
		f, err = os.Open(filepath.Join(dir, filename))
		if !os.IsNotExist(err) {
			break
		}
	}
	return f, err
}

func (e *Extractor) parseStream(filename string, r io.Reader) error {
	v := visitor{Extractor: e, fset: token.NewFileSet()}
	file, err := parser.ParseFile(v.fset, filename, r, 0)
	if err != nil {
		return err
	}

	if e.Keys == nil {
		e.Keys = make(map[string][]Location)
	}
	ast.Walk(&v, file)
	return nil
}

// ParseFile collects the keys referenced by a Go source file.
func (e *Extractor) ParseFile(filename string) error {
	f, err := e.openFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.parseStream(filename, f)
}

// ParseDir collects the keys referenced by every Go file below root,
// skipping the directories the go tool ignores.
func (e *Extractor) ParseDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return e.parseStream(path, f)
	})
}

// Used returns the collected keys, sorted.
func (e *Extractor) Used() []string {
	keys := make([]string, 0, len(e.Keys))
	for key := range e.Keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
