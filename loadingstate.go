package main

// loadingState tracks which pieces of session data have been computed,
// keyed by name.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

// set marks the key as loaded
func (l loadingState) set(key string) {
	l[key] = true
}

// unset marks the key as not loaded
func (l loadingState) unset(key string) {
	l[key] = false
}

// allLoaded returns true if all keys are loaded,
// otherwise false and the first key still pending
func (l loadingState) allLoaded() (bool, string) {
	for k, v := range l {
		if !v {
			return false, k
		}
	}

	return true, ""
}
