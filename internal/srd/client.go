package srd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "https://www.dnd5eapi.co"

// Client pulls the SRD skill list from the public 5e API and converts it
// into the skills.yaml mapping the data loader consumes.
type Client struct {
	client  *http.Client
	baseURL string
	dataDir string
	force   bool
}

func NewClient(dataDir string, force bool) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: DefaultBaseURL,
		dataDir: dataDir,
		force:   force,
	}
}

// SetBaseURL overrides the API host, mainly for tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type listResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Index string `json:"index"`
		Name  string `json:"name"`
		URL   string `json:"url"`
	} `json:"results"`
}

type skillItem struct {
	Index        string `json:"index"`
	Name         string `json:"name"`
	AbilityScore struct {
		Index string `json:"index"`
	} `json:"ability_score"`
}

func (c *Client) fetchList(endpoint string) (*listResponse, error) {
	url := fmt.Sprintf("%s/api/2014/%s", c.baseURL, endpoint)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) fetchSkill(url string) (*skillItem, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, url)
	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", fullURL, resp.Status)
	}

	var item skillItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

// FetchSkills downloads every skill entry and returns the skill name to
// ability score mapping. A progress callback fires once per skill.
func (c *Client) FetchSkills(progress func(name string)) (map[string]string, error) {
	list, err := c.fetchList("skills")
	if err != nil {
		return nil, err
	}

	skills := make(map[string]string, list.Count)
	for _, entry := range list.Results {
		item, err := c.fetchSkill(entry.URL)
		if err != nil {
			return nil, err
		}
		// API indexes are dashed (sleight-of-hand); the loader keys skills
		// by their spoken form (sleight of hand).
		skills[strings.ReplaceAll(item.Index, "-", " ")] = item.AbilityScore.Index
		if progress != nil {
			progress(item.Name)
		}
		// Small delay to stay polite with the public API.
		time.Sleep(50 * time.Millisecond)
	}

	return skills, nil
}

// SaveSkills writes the mapping as skills.yaml under the data directory.
// Without force an existing file is left alone.
func (c *Client) SaveSkills(skills map[string]string) (string, error) {
	localPath := filepath.Join(c.dataDir, "skills.yaml")

	if !c.force {
		if _, err := os.Stat(localPath); err == nil {
			return localPath, nil
		}
	}

	if err := os.MkdirAll(c.dataDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(skills); err != nil {
		return "", err
	}

	return localPath, nil
}
