package keyboard

import (
	"spatial-keyboard/internal/commands"
	"spatial-keyboard/internal/logger"
)

// Key command names understood by the controller.
const (
	CmdSwitch    = "switch"
	CmdEnter     = "enter"
	CmdSpace     = "space"
	CmdBackspace = "backspace"
	CmdShift     = "shift"
)

// Controller turns selected keys into buffer edits and keyboard commands.
type Controller struct {
	kb  *Keyboard
	buf *Buffer
	reg *commands.Registry
	log *logger.Logger
}

// NewController wires the built-in commands for kb and buf.
func NewController(kb *Keyboard, buf *Buffer, log *logger.Logger) *Controller {
	c := &Controller{kb: kb, buf: buf, reg: commands.NewRegistry(), log: log}
	c.reg.Register(CmdSwitch, func() error {
		kb.SetNextPanel()
		return nil
	})
	c.reg.Register(CmdEnter, func() error {
		buf.Append("\n")
		return nil
	})
	c.reg.Register(CmdSpace, func() error {
		buf.Append(" ")
		return nil
	})
	c.reg.Register(CmdBackspace, func() error {
		buf.Backspace()
		return nil
	})
	c.reg.Register(CmdShift, func() error {
		kb.ToggleCase()
		return nil
	})
	return c
}

// Commands exposes the registry so hosts can add their own key commands.
func (c *Controller) Commands() *commands.Registry {
	return c.reg
}

// OnKeySelected handles a key entering the selected state. A command key runs its command;
// otherwise the key's glyph is appended. Unknown commands are logged and ignored.
func (c *Controller) OnKeySelected(k *Key) {
	if k == nil {
		return
	}
	if cmd := k.Info.Command; cmd != "" {
		if err := c.reg.Execute(cmd); err != nil {
			c.log.Warnf("keyboard: key %d: %v", k.ID(), err)
		}
		return
	}
	if k.Info.Input != "" {
		c.buf.Append(k.Info.Input)
	}
}
