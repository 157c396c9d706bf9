package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapegen/debugs"
	"github.com/reusee/tapegen/logs"
	"github.com/reusee/tapegen/tapeconfigs"
	"github.com/reusee/tapegen/tapescript"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tapeconfigs.Module
	Script  tapescript.Module
	Debugs  debugs.Module
}
