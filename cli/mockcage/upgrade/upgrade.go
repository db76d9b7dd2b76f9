package upgrade

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
	"github.com/google/go-github/v62/github"
	"github.com/loilo-inc/mockcage/types"
	"github.com/minio/selfupdate"
	"golang.org/x/xerrors"
)

const (
	owner = "loilo-inc"
	repo  = "mockcage"
)

type upgrader struct {
	gh   *github.Client
	http *http.Client
}

func NewUpgrader(hc *http.Client) types.Upgrader {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &upgrader{gh: github.NewClient(hc), http: hc}
}

func (u *upgrader) Upgrade(ctx context.Context, input *types.UpgradeInput) error {
	log.Infof("checking for updates...")
	releases, _, err := u.gh.Repositories.ListReleases(ctx, owner, repo, nil)
	if err != nil {
		return xerrors.Errorf("failed to list releases: %w", err)
	}
	latest := findLatestRelease(releases, input.PreRelease)
	if latest == nil {
		return xerrors.Errorf("failed to find latest release")
	}
	version := latest.GetTagName()
	log.Infof("latest release: %s", version)
	// an unparsable current version (e.g. "dev") always upgrades
	if curr, err := semver.NewVersion(input.CurrentVersion); err == nil {
		if !semver.MustParse(version).GreaterThan(curr) {
			log.Info("no updates available")
			return nil
		}
	}
	log.Infof("upgrading from %s to %s", input.CurrentVersion, version)
	checksumAssetName := fmt.Sprintf("mockcage_%s_checksums.txt", version)
	binaryAssetName := fmt.Sprintf("mockcage_%s_%s.zip", runtime.GOOS, runtime.GOARCH)
	var checksumAsset, binaryAsset *github.ReleaseAsset
	for _, asset := range latest.Assets {
		switch asset.GetName() {
		case checksumAssetName:
			checksumAsset = asset
		case binaryAssetName:
			binaryAsset = asset
		}
	}
	if checksumAsset == nil || binaryAsset == nil {
		return xerrors.Errorf("failed to find assets for version %s", version)
	}
	log.Info("downloading checksums...")
	checksums, err := u.fetchChecksums(ctx, checksumAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	checksum, ok := checksums[binaryAssetName]
	if !ok {
		return xerrors.Errorf("failed to find checksum for %s", binaryAssetName)
	}
	sum, err := hex.DecodeString(checksum)
	if err != nil {
		return xerrors.Errorf("invalid checksum for %s: %w", binaryAssetName, err)
	}
	log.Infof("downloading binary %s...", binaryAssetName)
	body, err := u.get(ctx, binaryAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	defer body.Close()
	log.Infof("upgrading to %s", version)
	return selfupdate.Apply(body, selfupdate.Options{
		Checksum:   sum,
		TargetPath: input.TargetPath,
	})
}

// findLatestRelease picks the first semver tagged release. Releases are
// listed newest first.
func findLatestRelease(releases []*github.RepositoryRelease, preRelease bool) *github.RepositoryRelease {
	for _, release := range releases {
		if _, err := semver.NewVersion(release.GetTagName()); err != nil {
			continue
		}
		if !release.GetPrerelease() || preRelease {
			return release
		}
	}
	return nil
}

func (u *upgrader) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("failed to download %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, xerrors.Errorf("failed to download %s: status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}

func (u *upgrader) fetchChecksums(ctx context.Context, url string) (map[string]string, error) {
	body, err := u.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	sums := make(map[string]string)
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, "  ")
		if len(parts) != 2 {
			return nil, xerrors.Errorf("invalid checksum line: %s", line)
		}
		sums[parts[1]] = parts[0]
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("failed to read checksums: %w", err)
	}
	return sums, nil
}
