package main

import (
	"strconv"
	"strings"
)

// calculator is a small immediate-execution calculator. The display doubles
// as the entry buffer and results feed the next operation, like a basic
// handset calculator.
type calculator struct {
	display string
	acc     float64
	op      rune
	fresh   bool
}

func newCalculator() calculator {
	return calculator{display: "0", fresh: true}
}

func (c *calculator) press(r rune) {
	switch {
	case r >= '0' && r <= '9':
		c.enterDigit(r)
	case r == '.':
		if c.fresh || c.display == "Error" {
			c.display = "0."
			c.fresh = false
		} else if !strings.Contains(c.display, ".") {
			c.display += "."
		}
	case r == '+' || r == '-' || r == '*' || r == '/':
		c.applyPending()
		c.op = r
		c.fresh = true
	case r == '=':
		c.equals()
	case r == 'c' || r == 'C':
		*c = newCalculator()
	}
}

func (c *calculator) enterDigit(r rune) {
	if c.fresh || c.display == "0" || c.display == "Error" {
		c.display = string(r)
		c.fresh = false
		return
	}
	if len(c.display) < 12 {
		c.display += string(r)
	}
}

func (c *calculator) backspace() {
	if c.fresh || len(c.display) <= 1 || c.display == "Error" {
		c.display = "0"
		return
	}
	c.display = c.display[:len(c.display)-1]
}

func (c *calculator) equals() {
	c.applyPending()
	c.op = 0
	c.fresh = true
}

// applyPending folds the current entry into the accumulator using the
// pending operator, if any.
func (c *calculator) applyPending() {
	cur, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		cur = 0
	}

	if c.op == 0 {
		c.acc = cur
		return
	}

	switch c.op {
	case '+':
		c.acc += cur
	case '-':
		c.acc -= cur
	case '*':
		c.acc *= cur
	case '/':
		if cur == 0 {
			c.display = "Error"
			c.acc = 0
			c.op = 0
			c.fresh = true
			return
		}
		c.acc /= cur
	}
	c.op = 0
	c.display = strconv.FormatFloat(c.acc, 'f', -1, 64)
}
