package sequence

import "strings"

// Branch is one condition of a multi-branch block and the elements under it.
type Branch struct {
	Condition string
	Elements  []Element
}

// On creates a branch.
func On(condition string, elements ...Element) Branch {
	return Branch{Condition: condition, Elements: elements}
}

// Loop repeats its elements while the condition holds.
type Loop struct {
	Condition string
	Elements  []Element
}

// NewLoop creates a loop block.
func NewLoop(condition string, elements ...Element) *Loop {
	return &Loop{Condition: condition, Elements: elements}
}

func (l *Loop) String() string { return simpleBlock("loop", l.Condition, l.Elements) }

// Opt runs its elements only if the condition holds.
type Opt struct {
	Condition string
	Elements  []Element
}

// NewOpt creates an optional block.
func NewOpt(condition string, elements ...Element) *Opt {
	return &Opt{Condition: condition, Elements: elements}
}

func (o *Opt) String() string { return simpleBlock("opt", o.Condition, o.Elements) }

// Break leaves the enclosing flow when the condition holds.
type Break struct {
	Condition string
	Elements  []Element
}

// NewBreak creates a break block.
func NewBreak(condition string, elements ...Element) *Break {
	return &Break{Condition: condition, Elements: elements}
}

func (b *Break) String() string { return simpleBlock("break", b.Condition, b.Elements) }

// Alt chooses between alternative branches. The first branch opens the
// block, the others render as else branches.
type Alt struct {
	Branches []Branch
}

// NewAlt creates an alternative block.
func NewAlt(branches ...Branch) *Alt { return &Alt{Branches: branches} }

func (a *Alt) String() string { return branchBlock("alt", "else", a.Branches) }

// Par runs branches in parallel. The first branch opens the block, the
// others render as and branches.
type Par struct {
	Branches []Branch
}

// NewPar creates a parallel block.
func NewPar(branches ...Branch) *Par { return &Par{Branches: branches} }

func (p *Par) String() string { return branchBlock("par", "and", p.Branches) }

// Critical is a region that must run, with optional handling branches.
type Critical struct {
	Condition string
	Elements  []Element
	Options   []Branch
}

// NewCritical creates a critical region.
func NewCritical(condition string, elements []Element, options ...Branch) *Critical {
	return &Critical{Condition: condition, Elements: elements, Options: options}
}

func (c *Critical) String() string {
	var b strings.Builder
	b.WriteString("\tcritical " + c.Condition + "\n")
	writeElements(&b, c.Elements)
	for _, opt := range c.Options {
		b.WriteString("\toption " + opt.Condition + "\n")
		writeElements(&b, opt.Elements)
	}
	b.WriteString("\tend\n")
	return b.String()
}

func simpleBlock(keyword, condition string, elements []Element) string {
	var b strings.Builder
	b.WriteString("\t" + keyword + " " + condition + "\n")
	writeElements(&b, elements)
	b.WriteString("\tend\n")
	return b.String()
}

func branchBlock(first, next string, branches []Branch) string {
	var b strings.Builder
	for i, br := range branches {
		keyword := next
		if i == 0 {
			keyword = first
		}
		b.WriteString("\t" + keyword + " " + br.Condition + "\n")
		writeElements(&b, br.Elements)
	}
	b.WriteString("\tend\n")
	return b.String()
}
