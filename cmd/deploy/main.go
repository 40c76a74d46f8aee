// Command deploy pushes the built frontend to the hosting provider over FTP.
// Old assets are cleared first so stale hashed bundles do not accumulate, but
// a failed cleanup never blocks the upload itself.
package main

import (
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dgennetten/trailsMapper/internal/config"

	"github.com/jlaffaye/ftp"
)

// ftpConn covers the slice of *ftp.ServerConn the deployer uses.
type ftpConn interface {
	Login(user, password string) error
	List(path string) ([]*ftp.Entry, error)
	Delete(path string) error
	RemoveDir(path string) error
	MakeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

var dialFn = func(host string) (ftpConn, error) {
	return ftp.Dial(host, ftp.DialWithTimeout(10*time.Second))
}

var mainRunner = realMain

func main() {
	if err := mainRunner(config.Load()); err != nil {
		log.Fatalf("deploy failed: %v", err)
	}
}

func realMain(cfg config.Config) error {
	conn, err := dialFn(cfg.FTPHost)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Quit() }()

	if err := conn.Login(cfg.FTPUser, cfg.FTPPassword); err != nil {
		return err
	}

	assets := path.Join(cfg.RemoteBase, "assets")
	if err := removeTree(conn, assets); err != nil {
		log.Printf("clearing %s: %v (continuing with upload)", assets, err)
	}

	return uploadTree(conn, cfg.DistDir, cfg.RemoteBase)
}

// removeTree deletes a remote directory and everything under it. A directory
// that does not exist is not an error worth stopping for.
func removeTree(conn ftpConn, remote string) error {
	entries, err := conn.List(remote)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		child := path.Join(remote, entry.Name)
		if entry.Type == ftp.EntryTypeFolder {
			if err := removeTree(conn, child); err != nil {
				return err
			}
			continue
		}
		if err := conn.Delete(child); err != nil {
			return err
		}
	}
	return conn.RemoveDir(remote)
}

// uploadTree mirrors localDir under remoteBase. WalkDir visits directories
// before their contents, so every MakeDir lands before the files it holds.
func uploadTree(conn ftpConn, localDir, remoteBase string) error {
	return filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		remote := path.Join(remoteBase, filepath.ToSlash(rel))

		if d.IsDir() {
			if err := conn.MakeDir(remote); err != nil {
				// the directory may already exist remotely
				log.Printf("mkdir %s: %v", remote, err)
			}
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		log.Printf("uploading %s", remote)
		return conn.Stor(remote, f)
	})
}
