// Package registry emulates a hierarchical registry on top of a directory
// tree, so code written against a registry-style API runs where no native
// registry exists.
//
// Layout:
//
//	<config-root>/unixreg/<key path segments>/<value name>
//
// Every key is a directory and every value is a file whose contents are the
// raw value text. Keys below HKEY_CURRENT_USER live directly in the storage
// directory; other roots get a sub-directory named after the root. For that
// reason a HKEY_CURRENT_USER key may not start with another root's name:
// such keys fail with types.ErrUnsupported.
//
// Storage goes through an afero.Fs, the OS filesystem by default. Pass
// WithFs to run a Session over another filesystem such as afero.NewMemMapFs.
//
// Typical use:
//
//	cfg, err := registry.LoadConfig(registry.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	s := registry.NewSession(cfg)
//
//	key, err := s.CreateKey(registry.FromRoot(types.HKEY_CURRENT_USER), registry.Name("Software/MyApp"))
//	if err != nil {
//	    return err
//	}
//	defer s.CloseKey(key)
//
//	if err := s.SetValue(key, "Version", types.REG_SZ, "1.0.0"); err != nil {
//	    return err
//	}
//	v, err := s.GetValue(key, "Version")
//
// Differences from a native registry:
//   - OpenKey creates missing keys, exactly like CreateKey.
//   - DeleteKey removes nothing when the key is a directory; only a key that
//     is backed by a regular file (or a symlink to one) is removed.
//   - SetValue does not create the key; write into keys obtained from
//     CreateKey or OpenKey.
//   - Values are text. The value type passed to SetValue is ignored.
//   - Access masks are recorded but not enforced.
//   - Enumeration, flushing, info queries, load/save and reflection fail with
//     types.ErrNotImplemented. Remote connections fail with
//     types.ErrUnsupported.
//
// Import, ImportFile and ImportFiles apply Windows .reg files through the
// same operations. Input is fully parsed before the first write.
//
// A Session is not meant to be shared between goroutines without external
// serialization: individual calls are memory-safe but sequences of calls are
// not atomic.
package registry
