package csproj

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/natefinch/atomic"
)

const (
	projectTag       = "Project"
	propertyGroupTag = "PropertyGroup"
	chooseTag        = "Choose"
	whenTag          = "When"
	otherwiseTag     = "Otherwise"
	conditionAttr    = "Condition"
)

// Project is an MSBuild project file opened for editing. It implements Store
// over the children of its <PropertyGroup> elements, including those nested
// in <Choose> branches.
type Project struct {
	path string
	doc  *etree.Document
}

var _ Store = (*Project)(nil)

// OpenProject reads and parses the project file at path.
func OpenProject(path string) (*Project, error) {
	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return newProject(path, doc)
}

// ParseProject parses project XML held in memory. Save writes to path.
func ParseProject(path string, data []byte) (*Project, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return newProject(path, doc)
}

// newDocument keeps CDATA sections and writes quotes in attributes and text
// unescaped, so a save only changes the elements that were edited.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.WriteSettings.CanonicalText = true
	return doc
}

func newProject(path string, doc *etree.Document) (*Project, error) {
	root := doc.Root()
	if root == nil || root.Tag != projectTag {
		return nil, &IOError{Op: "open", Path: path, Err: fmt.Errorf("root element is not <%s>", projectTag)}
	}
	return &Project{path: path, doc: doc}, nil
}

// Path returns the file the project was opened from.
func (p *Project) Path() string { return p.path }

// groups returns the <PropertyGroup> elements directly under <Project>.
func (p *Project) groups() []*etree.Element {
	var groups []*etree.Element
	for _, child := range p.doc.Root().ChildElements() {
		if child.Tag == propertyGroupTag {
			groups = append(groups, child)
		}
	}
	return groups
}

// allGroups returns every <PropertyGroup> in document order, descending into
// the <When> and <Otherwise> branches of <Choose> elements.
func (p *Project) allGroups() []*etree.Element {
	return collectGroups(p.doc.Root(), nil)
}

func collectGroups(parent *etree.Element, groups []*etree.Element) []*etree.Element {
	for _, child := range parent.ChildElements() {
		switch child.Tag {
		case propertyGroupTag:
			groups = append(groups, child)
		case chooseTag:
			for _, branch := range child.ChildElements() {
				if branch.Tag == whenTag || branch.Tag == otherwiseTag {
					groups = collectGroups(branch, groups)
				}
			}
		}
	}
	return groups
}

// Properties returns every property element in document order, including
// those under conditioned groups and <Choose> branches.
func (p *Project) Properties() []Property {
	var props []Property
	for _, group := range p.allGroups() {
		for _, el := range group.ChildElements() {
			props = append(props, Property{Name: el.Tag, Value: el.Text()})
		}
	}
	return props
}

// Upsert overwrites the first unconditioned property named name. Only groups
// directly under <Project> are candidates: properties inside a conditioned
// group or a <Choose> branch, or carrying a Condition themselves, are never
// overwritten. When there is no such property a new one is appended to the
// first unconditioned <PropertyGroup>, which is created if needed.
func (p *Project) Upsert(name, value string) {
	groups := p.groups()
	var target *etree.Element
	for _, group := range groups {
		if conditioned(group) {
			continue
		}
		if target == nil {
			target = group
		}
		for _, el := range group.ChildElements() {
			if el.Tag == name && !conditioned(el) {
				el.SetText(value)
				return
			}
		}
	}

	if target == nil {
		target = etree.NewElement(propertyGroupTag)
		root := p.doc.Root()
		if len(groups) > 0 {
			root.InsertChildAt(groups[len(groups)-1].Index()+1, target)
		} else {
			root.InsertChildAt(0, target)
		}
	}
	target.CreateElement(name).SetText(value)
}

// Save writes the document back to its path, replacing the file atomically.
func (p *Project) Save() error {
	var buf bytes.Buffer
	if _, err := p.doc.WriteTo(&buf); err != nil {
		return &IOError{Op: "save", Path: p.path, Err: err}
	}
	if err := atomic.WriteFile(p.path, &buf); err != nil {
		return &IOError{Op: "save", Path: p.path, Err: err}
	}
	return nil
}

func conditioned(el *etree.Element) bool {
	return strings.TrimSpace(el.SelectAttrValue(conditionAttr, "")) != ""
}
