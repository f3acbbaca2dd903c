package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

var (
	ParamsPath    string = "/data/params/d"
	MemParamsPath string = "/dev/shm/params/d"
)

// Params
var (
	PLANNER_SETTINGS = ParamPath("PlannerSettings", false)
	PLANNER_STATS    = ParamPath("PlannerStats", false)

	// Usage counters, kept separate from the stats blob so they survive a
	// stats reset from older installs.
	PLANNER_DRIVES     = ParamPath("PlannerDrives", false)
	PLANNER_KILOMETERS = ParamPath("PlannerKilometers", false)
	PLANNER_MINUTES    = ParamPath("PlannerMinutes", false)

	LAST_GPS_POSITION = ParamPath("LastGPSPosition", true)

	// Written by the map daemon, read by the planner.
	MAP_SPEED_LIMIT       = ParamPath("MapSpeedLimit", true)
	NEXT_MAP_SPEED_LIMIT  = ParamPath("NextMapSpeedLimit", true)
	MAP_TARGET_VELOCITIES = ParamPath("MapTargetVelocities", true)
)

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
	err = os.MkdirAll(MemParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make memory params directory", "error", err, "directory", MemParamsPath)
	}
}

func IsString(data []byte) bool {
	for _, b := range data {
		if (b < 32 || b > 126) && !(b == 9 || b == 13 || b == 10) {
			return false
		}
	}
	return true
}

func GetParams(mem bool) ([]string, error) {
	basePath := ParamsPath
	if mem {
		basePath = MemParamsPath
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	paramFiles := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			paramFiles = append(paramFiles, name)
		}
	}
	sort.Strings(paramFiles)

	return paramFiles, nil
}

func ParamPath(name string, mem bool) string {
	if mem {
		return filepath.Join(MemParamsPath, name)
	}
	return filepath.Join(ParamsPath, name)
}

func GetParam(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func PutParam(path string, data []byte) error {
	dir := filepath.Dir(path)
	lock_dir := filepath.Dir(dir)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	fileLock, err := lockParamDir(lock_dir)
	if err != nil {
		return err
	}
	defer unlockParamDir(fileLock, lock_dir)

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(path string) error {
	dir := filepath.Dir(path)
	lock_dir := filepath.Dir(dir)

	fileLock, err := lockParamDir(lock_dir)
	if err != nil {
		return err
	}
	defer unlockParamDir(fileLock, lock_dir)

	os.Remove(path)

	return syncDir(dir)
}

func lockParamDir(lock_dir string) (*flock.Flock, error) {
	fileLock := flock.New(filepath.Join(lock_dir, ".lock"))

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking param directory")
		}
		if locked {
			return fileLock, nil
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(filepath.Join(lock_dir, ".lock")); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}
}

func unlockParamDir(fileLock *flock.Flock, lock_dir string) {
	if err := fileLock.Unlock(); err != nil {
		slog.Error("could not unlock params directory", "error", err)
	}
	if err := os.Remove(filepath.Join(lock_dir, ".lock")); err != nil {
		slog.Error("could not remove params lock file", "error", err)
	}
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}

	return nil
}
