package fs

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrNotExist is reported by MemService for missing paths.
var ErrNotExist = errors.New("no such file or directory")

// ErrExist is reported by MemService when a target already exists.
var ErrExist = errors.New("file exists")

type memNode struct {
	isDir      bool
	executable bool
}

// MemService is an in-memory DirectoryService. Paths use forward slashes and
// are rooted at "/". Like the rest of the core it is owned by one goroutine.
type MemService struct {
	nodes    map[string]memNode
	failures map[string]error
	calls    []string
}

// NewMemService returns a service containing only the root directory.
func NewMemService() *MemService {
	return &MemService{
		nodes:    map[string]memNode{"/": {isDir: true}},
		failures: make(map[string]error),
	}
}

// AddDir creates p and any missing parents.
func (m *MemService) AddDir(p string) *MemService {
	m.mkdirAll(path.Clean(p))
	return m
}

// AddFile creates a regular file at p, creating parents as needed.
func (m *MemService) AddFile(p string, executable bool) *MemService {
	p = path.Clean(p)
	m.mkdirAll(path.Dir(p))
	m.nodes[p] = memNode{executable: executable}
	return m
}

// FailOn makes the next and every later call of op on target return err.
// target is the full path the operation acts on.
func (m *MemService) FailOn(op, target string, err error) {
	m.failures[op+" "+path.Clean(target)] = err
}

// Exists reports whether p is present.
func (m *MemService) Exists(p string) bool {
	_, ok := m.nodes[path.Clean(p)]
	return ok
}

// Calls returns the mutating operations performed so far as "op path" lines.
func (m *MemService) Calls() []string {
	return append([]string(nil), m.calls...)
}

func (m *MemService) mkdirAll(p string) {
	for cur := p; ; cur = path.Dir(cur) {
		if _, ok := m.nodes[cur]; !ok {
			m.nodes[cur] = memNode{isDir: true}
		}
		if cur == "/" || cur == "." {
			return
		}
	}
}

func (m *MemService) check(op, target string) error {
	if err, ok := m.failures[op+" "+target]; ok {
		return ioError(op, target, err)
	}
	return nil
}

func (m *MemService) record(op, target string) {
	m.calls = append(m.calls, op+" "+target)
}

func (m *MemService) List(p string, includeHidden bool) ([]Entry, error) {
	p = path.Clean(p)
	if err := m.check("list", p); err != nil {
		return nil, err
	}
	node, ok := m.nodes[p]
	if !ok || !node.isDir {
		return nil, ioError("list", p, ErrNotExist)
	}

	var entries []Entry
	for candidate, n := range m.nodes {
		if candidate == p || path.Dir(candidate) != p {
			continue
		}
		name := path.Base(candidate)
		if !includeHidden && IsHidden(name) {
			continue
		}
		entries = append(entries, Entry{Name: name, Path: p, IsDir: n.isDir})
	}
	SortEntries(entries)
	return entries, nil
}

func (m *MemService) ResolveAbsolute(p string) (string, error) {
	if !path.IsAbs(p) {
		p = "/" + p
	}
	p = path.Clean(p)
	node, ok := m.nodes[p]
	if !ok {
		return "", ioError("resolve", p, ErrNotExist)
	}
	if !node.isDir {
		return "", ioError("resolve", p, errors.New("not a directory"))
	}
	return p, nil
}

func (m *MemService) Rename(dir, oldName, newName string) error {
	src := path.Join(dir, oldName)
	dst := path.Join(dir, newName)
	m.record("rename", src)
	if err := m.check("rename", src); err != nil {
		return err
	}
	if _, ok := m.nodes[src]; !ok {
		return ioError("rename", src, ErrNotExist)
	}
	m.moveTree(src, dst)
	return nil
}

func (m *MemService) Delete(dir, name string) error {
	target := path.Join(dir, name)
	m.record("delete", target)
	if err := m.check("delete", target); err != nil {
		return err
	}
	if _, ok := m.nodes[target]; !ok || target == "/" {
		return ioError("delete", target, ErrNotExist)
	}
	for _, p := range m.subtree(target) {
		delete(m.nodes, p)
	}
	return nil
}

func (m *MemService) CreateFile(dir, name string) error {
	target := path.Join(dir, name)
	m.record("create", target)
	if err := m.check("create", target); err != nil {
		return err
	}
	if err := m.requireParent(target, "create"); err != nil {
		return err
	}
	if existing, ok := m.nodes[target]; ok {
		if existing.isDir {
			return ioError("create", target, ErrExist)
		}
		return nil
	}
	m.nodes[target] = memNode{}
	return nil
}

func (m *MemService) CreateDirectory(dir, name string) error {
	target := path.Join(dir, name)
	m.record("mkdir", target)
	if err := m.check("mkdir", target); err != nil {
		return err
	}
	if err := m.requireParent(target, "mkdir"); err != nil {
		return err
	}
	if _, ok := m.nodes[target]; ok {
		return ioError("mkdir", target, ErrExist)
	}
	m.nodes[target] = memNode{isDir: true}
	return nil
}

func (m *MemService) Move(entry Entry, destination string) error {
	src := path.Join(entry.Path, entry.DiskName())
	dst := path.Join(destination, entry.DiskName())
	m.record("move", src)
	if err := m.check("move", src); err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	if _, ok := m.nodes[src]; !ok {
		return ioError("move", src, ErrNotExist)
	}
	if strings.HasPrefix(dst, src+"/") {
		return ioError("move", src, fmt.Errorf("cannot move %s into itself", src))
	}
	m.moveTree(src, dst)
	return nil
}

func (m *MemService) Copy(entry Entry, destination string) error {
	src := path.Join(entry.Path, entry.DiskName())
	dst := path.Join(destination, entry.DiskName())
	m.record("copy", src)
	if err := m.check("copy", src); err != nil {
		return err
	}
	if src == dst {
		return ioError("copy", src, errors.New("source and destination are the same"))
	}
	if _, ok := m.nodes[src]; !ok {
		return ioError("copy", src, ErrNotExist)
	}
	if strings.HasPrefix(dst, src+"/") {
		return ioError("copy", src, fmt.Errorf("cannot copy %s into itself", src))
	}
	for _, p := range m.subtree(src) {
		m.nodes[dst+strings.TrimPrefix(p, src)] = m.nodes[p]
	}
	return nil
}

func (m *MemService) IsExecutable(entry Entry) bool {
	node, ok := m.nodes[path.Join(entry.Path, entry.DiskName())]
	return ok && !node.isDir && node.executable
}

func (m *MemService) requireParent(target, op string) error {
	parent, ok := m.nodes[path.Dir(target)]
	if !ok || !parent.isDir {
		return ioError(op, target, ErrNotExist)
	}
	return nil
}

// subtree returns p and every path below it.
func (m *MemService) subtree(p string) []string {
	paths := []string{p}
	prefix := p + "/"
	for candidate := range m.nodes {
		if strings.HasPrefix(candidate, prefix) {
			paths = append(paths, candidate)
		}
	}
	return paths
}

func (m *MemService) moveTree(src, dst string) {
	moved := make(map[string]memNode)
	for _, p := range m.subtree(src) {
		moved[dst+strings.TrimPrefix(p, src)] = m.nodes[p]
		delete(m.nodes, p)
	}
	for p, n := range moved {
		m.nodes[p] = n
	}
}
