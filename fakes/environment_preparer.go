package fakes

import (
	"sync"

	"github.com/winpatable/launcher"
)

type EnvironmentPreparer struct {
	PrepareCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Env      []string
			Settings launcher.Settings
		}
		Returns struct {
			StringSlice []string
		}
		Stub func([]string, launcher.Settings) []string
	}
}

func (f *EnvironmentPreparer) Prepare(param1 []string, param2 launcher.Settings) []string {
	f.PrepareCall.mutex.Lock()
	defer f.PrepareCall.mutex.Unlock()
	f.PrepareCall.CallCount++
	f.PrepareCall.Receives.Env = param1
	f.PrepareCall.Receives.Settings = param2
	if f.PrepareCall.Stub != nil {
		return f.PrepareCall.Stub(param1, param2)
	}
	return f.PrepareCall.Returns.StringSlice
}
