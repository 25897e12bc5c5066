package fakes

import "sync"

type ProcessImage struct {
	ReplaceCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Path string
			Argv []string
			Env  []string
		}
		Returns struct {
			Error error
		}
		Stub func(string, []string, []string) error
	}
}

func (f *ProcessImage) Replace(param1 string, param2 []string, param3 []string) error {
	f.ReplaceCall.mutex.Lock()
	defer f.ReplaceCall.mutex.Unlock()
	f.ReplaceCall.CallCount++
	f.ReplaceCall.Receives.Path = param1
	f.ReplaceCall.Receives.Argv = param2
	f.ReplaceCall.Receives.Env = param3
	if f.ReplaceCall.Stub != nil {
		return f.ReplaceCall.Stub(param1, param2, param3)
	}
	return f.ReplaceCall.Returns.Error
}
