package author

import "strings"

// pinyinTable maps common Chinese characters to pinyin syllables. It covers
// frequent surnames (including two-character surnames split into their
// parts) and common given-name characters. Transliteration is best-effort:
// a name with any character outside this table is kept literal-only.
var pinyinTable = map[rune]string{
	// Frequent surnames
	'王': "wang", '李': "li", '张': "zhang", '刘': "liu", '陈': "chen",
	'杨': "yang", '黄': "huang", '赵': "zhao", '吴': "wu", '周': "zhou",
	'徐': "xu", '孙': "sun", '马': "ma", '朱': "zhu", '胡': "hu",
	'郭': "guo", '何': "he", '林': "lin", '高': "gao", '罗': "luo",
	'郑': "zheng", '梁': "liang", '谢': "xie", '宋': "song", '唐': "tang",
	'许': "xu", '韩': "han", '冯': "feng", '邓': "deng", '曹': "cao",
	'彭': "peng", '曾': "zeng", '肖': "xiao", '田': "tian", '董': "dong",
	'潘': "pan", '袁': "yuan", '蔡': "cai", '蒋': "jiang", '余': "yu",
	'杜': "du", '叶': "ye", '程': "cheng", '魏': "wei", '苏': "su",
	'吕': "lv", '丁': "ding", '任': "ren", '卢': "lu", '姚': "yao",
	'沈': "shen", '钟': "zhong", '姜': "jiang", '崔': "cui", '谭': "tan",
	'陆': "lu", '范': "fan", '汪': "wang", '廖': "liao", '石': "shi",
	'金': "jin", '韦': "wei", '贾': "jia", '夏': "xia", '傅': "fu",
	'方': "fang", '邹': "zou", '熊': "xiong", '白': "bai", '孟': "meng",
	'秦': "qin", '邱': "qiu", '侯': "hou", '江': "jiang", '尹': "yin",
	'薛': "xue", '闫': "yan", '段': "duan", '雷': "lei", '龙': "long",
	'史': "shi", '钱': "qian",
	// Two-character surname components
	'欧': "ou", '阳': "yang", '司': "si", '诸': "zhu", '葛': "ge",
	'上': "shang", '官': "guan", '夫': "fu",
	// Common given-name characters
	'伟': "wei", '芳': "fang", '娜': "na", '敏': "min", '静': "jing",
	'丽': "li", '强': "qiang", '磊': "lei", '军': "jun", '洋': "yang",
	'勇': "yong", '艳': "yan", '杰': "jie", '娟': "juan", '涛': "tao",
	'明': "ming", '超': "chao", '秀': "xiu", '霞': "xia", '平': "ping",
	'刚': "gang", '桂': "gui", '英': "ying", '华': "hua", '玉': "yu",
	'小': "xiao", '国': "guo", '文': "wen", '志': "zhi", '建': "jian",
	'春': "chun", '海': "hai", '晓': "xiao", '燕': "yan", '红': "hong",
	'玲': "ling", '飞': "fei", '云': "yun", '辉': "hui", '东': "dong",
	'琴': "qin", '兰': "lan", '成': "cheng", '新': "xin", '峰': "feng",
	'雪': "xue", '梅': "mei", '亮': "liang", '銮': "luan", '克': "ke",
	'思': "si", '远': "yuan", '大': "da", '中': "zhong", '天': "tian",
	'子': "zi", '一': "yi", '家': "jia", '永': "yong", '福': "fu",
}

// Transliterate converts a run of Chinese characters into a single
// capitalized pinyin word. It fails (ok == false) when any character is
// outside the table, leaving the caller to fall back to the literal form.
func Transliterate(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		syllable, ok := pinyinTable[r]
		if !ok {
			return "", false
		}
		b.WriteString(syllable)
	}
	if b.Len() == 0 {
		return "", false
	}
	word := b.String()
	return strings.ToUpper(word[:1]) + word[1:], true
}
